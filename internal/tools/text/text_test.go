package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCapitaliseFirstLetter(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{input: "default", expected: "Default"},
		{input: "200", expected: "200"},
		{input: "Already", expected: "Already"},
		{input: "", expected: ""},
		{input: "_x", expected: "_x"},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.expected, CapitaliseFirstLetter(tc.input))
		})
	}
}

func TestPathToIdentifier(t *testing.T) {
	testCases := []struct {
		path     string
		expected string
	}{
		{path: "/pets", expected: "Pets"},
		{path: "/pets/{id}", expected: "PetsId"},
		{path: "/user-accounts/{account_id}/items", expected: "UserAccountsAccount_idItems"},
		{path: "/v1.2/files/{name}.json", expected: "V12FilesNamejson"},
		{path: "/", expected: ""},
		{path: "/pets/id", expected: "PetsId"},
	}

	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			assert.Equal(t, tc.expected, PathToIdentifier(tc.path))
		})
	}
}

func TestIsIdentifier(t *testing.T) {
	testCases := []struct {
		input    string
		expected bool
	}{
		{input: "getPetsIdRequestQuery", expected: true},
		{input: "$ref", expected: true},
		{input: "_private", expected: true},
		{input: "200", expected: false},
		{input: "x-rate-limit", expected: false},
		{input: "", expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.expected, IsIdentifier(tc.input))
		})
	}
}
