package cli

import (
	"bytes"
	"strings"
	"testing"

	"ryokan_check/models"
)

func TestParseProperties(t *testing.T) {
	props, err := parseProperties("all")
	if err != nil {
		t.Fatalf("parse all: %v", err)
	}
	if len(props) != 2 {
		t.Fatalf("expected both properties for all, got %v", props)
	}

	props, err = parseProperties("takamiya, miyamaso")
	if err != nil {
		t.Fatalf("parse aliases: %v", err)
	}
	if len(props) != 1 || props[0] != models.Miyamaso {
		t.Fatalf("aliases of the same property must deduplicate, got %v", props)
	}

	_, err = parseProperties("miyamaso,hilton")
	if err == nil {
		t.Fatalf("expected error for unknown property")
	}
	if !strings.Contains(err.Error(), "hilton") || !strings.Contains(err.Error(), "valid") {
		t.Fatalf("error should name the input and the valid options, got %v", err)
	}
}

func TestParseRoomFilter(t *testing.T) {
	filter, err := parseRoomFilter([]models.Property{models.Miyamaso}, "rian")
	if err != nil {
		t.Fatalf("parse filter: %v", err)
	}
	if len(filter[models.Miyamaso]) != 2 {
		t.Fatalf("expected rian to expand to both variants, got %v", filter[models.Miyamaso])
	}

	// Single property, unknown room: hard error naming the valid IDs.
	_, err = parseRoomFilter([]models.Property{models.Miyamaso}, "sakura")
	if err == nil {
		t.Fatalf("expected error for room from the wrong catalog")
	}
	if !strings.Contains(err.Error(), "sakura") || !strings.Contains(err.Error(), "25112") {
		t.Fatalf("error should name the room and valid IDs, got %v", err)
	}

	// Several properties: the filter just skips catalogs it cannot
	// resolve against.
	filter, err = parseRoomFilter(models.AllProperties(), "sakura")
	if err != nil {
		t.Fatalf("multi-property filter: %v", err)
	}
	if len(filter[models.Miyakowasure]) != 1 {
		t.Fatalf("expected sakura resolved for miyakowasure, got %v", filter[models.Miyakowasure])
	}
	if _, ok := filter[models.Miyamaso]; ok {
		t.Fatalf("miyamaso must be skipped when the room is unknown there")
	}
}

func TestCheckCommand_RejectsBadInput(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"missing date", []string{"check"}, "date is required"},
		{"bad date", []string{"check", "-d", "15/03/2026"}, "invalid date format"},
		{"bad property", []string{"check", "-d", "2026-03-15", "-p", "hilton"}, "unknown property"},
		{"short interval", []string{"check", "-d", "2026-03-15", "-i", "5"}, "interval"},
	}

	for _, tc := range cases {
		root := newRootCmd()
		root.SetArgs(tc.args)
		root.SetOut(&bytes.Buffer{})
		root.SetErr(&bytes.Buffer{})

		err := root.Execute()
		if err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
		if !strings.Contains(err.Error(), tc.want) {
			t.Fatalf("%s: expected error containing %q, got %v", tc.name, tc.want, err)
		}
	}
}

func TestRoomsCommand(t *testing.T) {
	var out bytes.Buffer
	root := newRootCmd()
	root.SetArgs([]string{"rooms", "-p", "miyamaso"})
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})

	if err := root.Execute(); err != nil {
		t.Fatalf("rooms command: %v", err)
	}

	for _, want := range []string{"25112", "HINAKURA", "yes"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("rooms output missing %q:\n%s", want, out.String())
		}
	}
	if strings.Contains(out.String(), "SAKURA") {
		t.Fatalf("miyamaso listing must not include miyakowasure rooms:\n%s", out.String())
	}
}
