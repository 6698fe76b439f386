// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("v1.2.0", "2026-10-01", "abc1234")
	assert.Equal(t, "v1.2.0", info.BuildVersion())
	assert.Equal(t, "2026-10-01", info.BuildDate())
	assert.Equal(t, "abc1234", info.BuildCommit())
}

func TestNewAppBuildInfo_BlankIsNA(t *testing.T) {
	info := NewAppBuildInfo("", "  ", "")
	assert.Equal(t, "N/A", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
}

func TestAppBuildInfo_MarshalJSON(t *testing.T) {
	out, err := json.Marshal(NewAppBuildInfo("v1.2.0", "", "abc1234"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":"v1.2.0","date":"N/A","commit":"abc1234"}`, string(out))
}
