package main

import "github.com/fatih/color"

var (
	emph = color.New(color.FgBlue, color.Bold).SprintFunc()

	winColor  = color.New(color.FgGreen, color.Bold)
	loseColor = color.New(color.FgRed, color.Bold)
)
