package validate

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		max     int
		want    string
		wantErr string
	}{
		{"valid", "Backend Engineer", 200, "Backend Engineer", ""},
		{"trims", "  Backend Engineer  ", 200, "Backend Engineer", ""},
		{"not a string", 42, 200, "", "Job title must be a string"},
		{"nil", nil, 200, "", "Job title must be a string"},
		{"empty", "", 200, "", "Job title cannot be empty"},
		{"whitespace only", "   ", 200, "", "Job title cannot be empty"},
		{"too long", strings.Repeat("a", 201), 200, "", "Job title exceeds maximum length of 200 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := String(tt.value, "Job title", tt.max)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOptionalStringAbsent(t *testing.T) {
	for _, v := range []any{nil, "", "   "} {
		got, err := OptionalString(v, "Country", 100)
		require.NoError(t, err)
		assert.Empty(t, got)
	}
}

func TestNumber(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		want    *float64
		wantErr string
	}{
		{"absent nil", nil, nil, ""},
		{"absent empty string", "", nil, ""},
		{"float", 50000.0, ptr(50000.0), ""},
		{"int", 50000, ptr(50000.0), ""},
		{"numeric string", "50000", ptr(50000.0), ""},
		{"garbage string", "lots", nil, "Minimum salary must be a valid number"},
		{"NaN string", "NaN", nil, "Minimum salary must be a valid number"},
		{"nan lowercase", "nan", nil, "Minimum salary must be a valid number"},
		{"infinity string", "Inf", nil, "Minimum salary must be a valid number"},
		{"NaN float", math.NaN(), nil, "Minimum salary must be a valid number"},
		{"bool", true, nil, "Minimum salary must be a valid number"},
		{"below min", -1.0, nil, "Minimum salary must be at least 0"},
		{"above max", 10000001.0, nil, "Minimum salary must not exceed 10000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Number(tt.value, "Minimum salary", 0, 10000000)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBool(t *testing.T) {
	got, err := Bool(nil, "Require video")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = Bool(true, "Require video")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, *got)

	_, err = Bool("yes", "Require video")
	require.Error(t, err)
	assert.Equal(t, "Require video must be a boolean", err.Error())
}

func TestActorString(t *testing.T) {
	actor, err := Actor("Jane Recruiter", "Created by")
	require.NoError(t, err)
	assert.Equal(t, "Jane Recruiter", actor.Name)
	assert.Empty(t, actor.Email)
}

func TestActorObject(t *testing.T) {
	actor, err := Actor(map[string]any{
		"name":  "A",
		"email": "a@x.com",
		"image": "https://cdn.example.com/a.png",
		"role":  "ignored",
	}, "Created by")
	require.NoError(t, err)
	assert.Equal(t, "A", actor.Name)
	assert.Equal(t, "a@x.com", actor.Email)
	assert.Equal(t, "https://cdn.example.com/a.png", actor.Image)
}

func TestActorRejectsBadShapes(t *testing.T) {
	_, err := Actor(42, "Created by")
	require.Error(t, err)

	_, err = Actor(map[string]any{"name": "A", "email": "not-an-email"}, "Created by")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email")

	_, err = Actor(map[string]any{"name": "A", "image": "::not a url"}, "Created by")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "image")
}

func ptr(f float64) *float64 { return &f }
