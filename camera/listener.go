package camera

// TransitionListener observes room transition lifecycle. Calls happen
// synchronously inside RoomCamera.Update.
type TransitionListener interface {
	BeginTransition()
	ContinueTransition(dt float64)
	EndTransition()
}

// ListenerFuncs adapts plain functions to a TransitionListener. Nil fields
// are skipped.
type ListenerFuncs struct {
	OnBegin    func()
	OnContinue func(dt float64)
	OnEnd      func()
}

func (l ListenerFuncs) BeginTransition() {
	if l.OnBegin != nil {
		l.OnBegin()
	}
}

func (l ListenerFuncs) ContinueTransition(dt float64) {
	if l.OnContinue != nil {
		l.OnContinue(dt)
	}
}

func (l ListenerFuncs) EndTransition() {
	if l.OnEnd != nil {
		l.OnEnd()
	}
}
