package main

import "github.com/mHappah3019/fittracker-sub000/cmd/fit/root"

func main() {
	root.Execute()
}
