//go:build nosdl

package main

import "errors"

func (d *demo) runWindow() error {
	return errors.New("scrolldemo was built without SDL; use --headless")
}
