// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package options

import (
	"github.com/virushuo/mongo-go-concern/core/writeconcern"
)

// CreateCollectionOptions represents options that can be used to configure a CreateCollection operation.
type CreateCollectionOptions struct {
	// The write concern to attach to the create command. The default value is nil, which means the command runs
	// under the write concern of the Database it is issued against.
	WriteConcern *writeconcern.WriteConcern
}

// CreateCollection creates a new CreateCollectionOptions instance.
func CreateCollection() *CreateCollectionOptions {
	return &CreateCollectionOptions{}
}

// SetWriteConcern sets the value for the WriteConcern field.
func (c *CreateCollectionOptions) SetWriteConcern(wc *writeconcern.WriteConcern) *CreateCollectionOptions {
	c.WriteConcern = wc
	return c
}

// MergeCreateCollectionOptions combines the given CreateCollectionOptions instances into a single
// CreateCollectionOptions in a last-one-wins fashion.
func MergeCreateCollectionOptions(opts ...*CreateCollectionOptions) *CreateCollectionOptions {
	c := CreateCollection()

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if opt.WriteConcern != nil {
			c.WriteConcern = opt.WriteConcern
		}
	}

	return c
}
