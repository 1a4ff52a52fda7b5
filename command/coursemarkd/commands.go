// SPDX-License-Identifier: ISC
// Copyright (c) 2026 Coursemark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/coursemark/coursemarkd/account"
	"github.com/coursemark/coursemarkd/catalog"
	"github.com/coursemark/coursemarkd/configuration"
	"github.com/coursemark/coursemarkd/ownership"
)

// setup command handler
//
// commands that run before the configuration file is read
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "version", "v":
		fmt.Printf("%s\n", version)

	case "start", "run":
		return false // continue into normal startup

	case "help", "h", "?":
		fallthrough
	default:
		if "help" != command && "h" != command && "?" != command {
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                    (h)    - display this message\n")
		fmt.Printf("  version                 (v)    - display version string\n")
		fmt.Printf("  config-test             (cfg)  - just check the configuration file\n")
		fmt.Printf("  course-count            (n)    - display the number of courses ever created\n")
		fmt.Printf("  list-courses OWNER [N]  (list) - list courses owned by OWNER starting at index N\n")
		fmt.Printf("  load-genesis FILE       (gen)  - load a JSON array of courses into the catalogue\n")
		fmt.Printf("  start                   (run)  - just run the program, same as no arguments\n")
		fmt.Printf("                                   for convenience when passing script arguments\n")
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// config command handler
//
// commands that run after the configuration is read but before any
// data storage is opened
func processConfigCommand(arguments []string, options *configuration.Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "config-test", "cfg":
		b, err := json.Marshal(options)
		if err != nil {
			exitwithstatus.Message("error: %s", err)
		}
		var out bytes.Buffer
		json.Indent(&out, b, "", "  ")
		out.WriteTo(os.Stdout)
		os.Stdout.WriteString("\n")

	default: // unknown commands fall through to data command
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// data command handler
//
// the catalogue storage is open so these commands can access and/or
// change the database
func processDataCommand(log *logger.L, arguments []string, options *configuration.Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "course-count", "n":
		fmt.Printf("%d\n", catalog.CourseCount())

	case "list-courses", "list":
		if len(arguments) < 1 {
			exitwithstatus.Message("error: missing OWNER argument")
		}
		owner, err := account.AccountFromBase58(arguments[0])
		if nil != err {
			exitwithstatus.Message("error: invalid owner: %q error: %s", arguments[0], err)
		}
		start := uint64(0)
		if len(arguments) > 1 {
			start, err = strconv.ParseUint(arguments[1], 10, 64)
			if nil != err {
				exitwithstatus.Message("error: invalid start index: %q error: %s", arguments[1], err)
			}
		}
		records, err := ownership.ListCoursesFor(owner, start, 100)
		if nil != err {
			exitwithstatus.Message("error: list courses: %s", err)
		}
		for _, record := range records {
			course, err := catalog.GetCourse(record.CourseId)
			if nil != err {
				fmt.Printf("%3d %v *missing*\n", record.N, record.CourseId)
				continue
			}
			fmt.Printf("%3d %v %q\n", record.N, record.CourseId, course.Name)
		}

	case "load-genesis", "gen":
		if len(arguments) < 1 {
			exitwithstatus.Message("error: missing FILE argument")
		}
		n, err := catalog.LoadGenesisFile(arguments[0])
		if nil != err {
			exitwithstatus.Message("error: genesis load: %s", err)
		}
		log.Infof("loaded %d genesis courses", n)
		fmt.Printf("loaded %d courses\n", n)

	default:
		fmt.Printf("error: no such command: %q\n", command)
		processSetupCommand("coursemarkd", []string{"help"})
	}

	// indicate processing complete and perform normal exit from main
	return true
}
