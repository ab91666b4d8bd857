// Package testutil holds helpers shared by package tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// TestDataPath returns the absolute path of the repository testdata directory
func TestDataPath(t testing.TB) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	for {
		testdataPath := filepath.Join(wd, "testdata")
		if _, err := os.Stat(testdataPath); err == nil {
			return testdataPath
		}
		parent := filepath.Dir(wd)
		if parent == wd {
			t.Fatal("could not find testdata directory")
		}
		wd = parent
	}
}

// Fixture returns the path of a file under testdata/
func Fixture(t testing.TB, name string) string {
	t.Helper()
	return filepath.Join(TestDataPath(t), name)
}

// CityFiles maps the bundled fixture cities to their file names
func CityFiles() map[string]string {
	return map[string]string{
		"chicago":       "chicago.csv",
		"new york city": "new_york_city.csv",
		"washington":    "washington.csv",
	}
}
