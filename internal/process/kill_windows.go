//go:build windows

package process

import (
	"os/exec"
	"strconv"
)

// killTree runs taskkill with /T so children go down with the browser.
func killTree(pid int) error {
	return exec.Command("taskkill", "/F", "/T", "/PID", strconv.Itoa(pid)).Run()
}
