// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNote_IsNew(t *testing.T) {
	assert.True(t, Note{Title: "T"}.IsNew())
	assert.False(t, Note{Title: "T"}.WithID(1).IsNew())
}

func TestNote_WithID_DoesNotMutateOriginal(t *testing.T) {
	original := Note{Title: "T", Content: "C"}
	withID := original.WithID(7)

	assert.Nil(t, original.ID)
	require.NotNil(t, withID.ID)
	assert.Equal(t, int64(7), *withID.ID)
	assert.Equal(t, original.Title, withID.Title)
	assert.Equal(t, original.Content, withID.Content)
}

func TestNote_WithoutID(t *testing.T) {
	n := Note{Title: "T"}.WithID(3).WithoutID()
	assert.Nil(t, n.ID)
	assert.Equal(t, int64(0), n.IDValue())
}

func TestNote_JSON_NullID(t *testing.T) {
	data, err := json.Marshal(Note{Title: "T", Content: "C"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":null,"title":"T","content":"C"}`, string(data))
}

func TestNote_JSON_RoundTripWithID(t *testing.T) {
	var n Note
	require.NoError(t, json.Unmarshal([]byte(`{"id":5,"title":"T","content":"C"}`), &n))
	assert.Equal(t, int64(5), n.IDValue())
	assert.Equal(t, "T", n.Title)
	assert.Equal(t, "C", n.Content)
}

func TestAppBuildInfo_DefaultsToNotAvailable(t *testing.T) {
	info := NewAppBuildInfo("", "2026-01-01", "")

	assert.Equal(t, "N/A", info.BuildVersion())
	assert.Equal(t, "2026-01-01", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
	assert.Contains(t, info.String(), "Build date: 2026-01-01")
}
