// SPDX-License-Identifier: ISC
// Copyright (c) 2026 Coursemark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package catalog

import (
	"encoding/json"
	"io/ioutil"

	"github.com/coursemark/coursemarkd/catalogrecord"
)

// LoadGenesis - bootstrap the catalogue with a list of courses
//
// failures are logged and skipped so one bad record does not block
// the rest; returns the number of courses actually created
func LoadGenesis(courses []*catalogrecord.Course) int {

	created := 0
	for i, course := range courses {
		courseId, err := CreateCourse(course)
		if nil != err {
			globalData.log.Errorf("genesis course[%d] error: %s", i, err)
			continue
		}
		globalData.log.Infof("genesis course[%d]: %v", i, courseId)
		created += 1
	}
	return created
}

// LoadGenesisFile - read a JSON array of course records and load them
func LoadGenesisFile(fileName string) (int, error) {

	data, err := ioutil.ReadFile(fileName)
	if nil != err {
		return 0, err
	}

	var courses []*catalogrecord.Course
	err = json.Unmarshal(data, &courses)
	if nil != err {
		return 0, err
	}

	return LoadGenesis(courses), nil
}
