// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package options

import (
	"github.com/virushuo/mongo-go-concern/core/readconcern"
	"github.com/virushuo/mongo-go-concern/core/writeconcern"
)

// RunCmdOptions represents options that can be used to configure a RunCommand operation.
type RunCmdOptions struct {
	// The read concern to attach to the command. The default value is nil, which means the command runs under the
	// read concern of the Database it is issued against.
	ReadConcern *readconcern.ReadConcern

	// The write concern to attach to the command. The default value is nil, which means the command runs under the
	// write concern of the Database it is issued against.
	WriteConcern *writeconcern.WriteConcern
}

// RunCmd creates a new RunCmdOptions instance.
func RunCmd() *RunCmdOptions {
	return &RunCmdOptions{}
}

// SetReadConcern sets the value for the ReadConcern field.
func (rc *RunCmdOptions) SetReadConcern(r *readconcern.ReadConcern) *RunCmdOptions {
	rc.ReadConcern = r
	return rc
}

// SetWriteConcern sets the value for the WriteConcern field.
func (rc *RunCmdOptions) SetWriteConcern(w *writeconcern.WriteConcern) *RunCmdOptions {
	rc.WriteConcern = w
	return rc
}

// MergeRunCmdOptions combines the given RunCmdOptions instances into a single RunCmdOptions
// in a last-one-wins fashion.
func MergeRunCmdOptions(opts ...*RunCmdOptions) *RunCmdOptions {
	rc := RunCmd()

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if opt.ReadConcern != nil {
			rc.ReadConcern = opt.ReadConcern
		}
		if opt.WriteConcern != nil {
			rc.WriteConcern = opt.WriteConcern
		}
	}

	return rc
}
