package main

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// manifest is the YAML description of a virtual filesystem: an ordered
// list of mounts (search-path order) and an optional write directory.
//
//	write_dir: /home/user/.local/share/game
//	mounts:
//	  - dir: /usr/share/game/base
//	    point: /
//	  - dir: /usr/share/game/expansion
//	    point: /expansion
type manifest struct {
	WriteDir string      `yaml:"write_dir"`
	Mounts   []mountSpec `yaml:"mounts"`
}

type mountSpec struct {
	Dir   string `yaml:"dir"`
	Point string `yaml:"point"`
}

func loadManifest(path string) (manifest, error) {
	var m manifest
	data, err := os.ReadFile(path)
	if err != nil {
		return m, err
	}
	if err := yaml.Unmarshal(data, &m); err != nil {
		return m, fmt.Errorf("parse %s: %w", path, err)
	}
	for i, spec := range m.Mounts {
		if spec.Dir == "" {
			return m, fmt.Errorf("%s: mount #%d has no dir", path, i+1)
		}
	}
	return m, nil
}

// parseMountFlag splits a --mount value of the form "DIR::POINT". A bare
// "DIR" mounts at the virtual root.
func parseMountFlag(value string) mountSpec {
	if dir, point, ok := strings.Cut(value, "::"); ok {
		return mountSpec{Dir: dir, Point: point}
	}
	return mountSpec{Dir: value, Point: "/"}
}
