// Command roomcheck validates the camera rooms of levels: room layout,
// spawn placement and room event scripts.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/milk9111/roomscroller/camera"
	"github.com/milk9111/roomscroller/levels"
	"github.com/milk9111/roomscroller/prefabs"
)

func main() {
	verbose := flag.Bool("v", false, "print every room")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: roomcheck [-v] [level.json ...]\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	log.SetFlags(0)

	var lvls []*levels.Level
	if flag.NArg() == 0 {
		for _, name := range levels.Names() {
			lvl, err := levels.LoadLevelFromFS(name)
			if err != nil {
				log.Fatal(err)
			}
			lvls = append(lvls, lvl)
		}
	}
	for _, path := range flag.Args() {
		lvl, err := levels.LoadLevel(os.DirFS(filepath.Dir(path)), filepath.Base(path))
		if err != nil {
			log.Fatal(err)
		}
		lvls = append(lvls, lvl)
	}

	failed := 0
	for _, lvl := range lvls {
		problems := check(lvl, prefabs.HasScript)
		if *verbose {
			for _, r := range lvl.CameraRooms() {
				log.Printf("%s: room %q %v event=%q", lvl.Name, r.Name, r.Bounds, r.Event)
			}
		}
		for _, p := range problems {
			log.Printf("%s: %s", lvl.Name, p)
		}
		if len(problems) > 0 {
			failed++
			continue
		}
		log.Printf("%s: ok (%d rooms)", lvl.Name, len(lvl.Rooms))
	}
	if failed > 0 {
		os.Exit(1)
	}
}

// check returns every problem found in lvl. hasScript reports whether a room
// event has a script to run.
func check(lvl *levels.Level, hasScript func(string) bool) []string {
	var problems []string
	rooms := lvl.CameraRooms()
	if len(rooms) == 0 {
		return []string{"no rooms"}
	}
	if err := camera.ValidateRooms(rooms); err != nil {
		problems = append(problems, err.Error())
	}

	bounds := lvl.Bounds()
	for _, r := range rooms {
		if in, ok := r.Bounds.Intersection(bounds); !ok || in != r.Bounds {
			problems = append(problems, fmt.Sprintf("room %q %v leaves level bounds %v", r.Name, r.Bounds, bounds))
		}
		if r.Event != "" && hasScript != nil && !hasScript(r.Event) {
			problems = append(problems, fmt.Sprintf("room %q event %q has no script", r.Name, r.Event))
		}
	}

	spawn := lvl.SpawnPoint()
	inRoom := false
	for _, r := range rooms {
		if r.Bounds.Contains(spawn) {
			inRoom = true
			break
		}
	}
	if !inRoom {
		problems = append(problems, fmt.Sprintf("spawn %s is outside every room", spawn))
	}
	return problems
}
