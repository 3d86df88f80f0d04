package main

import "fmt"

// WindowTitle renders the terminal/window title for a list of n tasks.
func WindowTitle(appName string, n int) string {
	return fmt.Sprintf("%s (%d)", appName, n)
}
