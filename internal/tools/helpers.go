// Package tools provides the MCP tool handlers of the E-DNA server.
//
// Each tool follows the same shape:
//   - a struct holding its dependencies, injected via the constructor
//   - Definition() returns the mcp.Tool schema
//   - Handle() processes the request and returns a result
//
// Bad input and unknown profiles come back as tool errors
// (mcp.NewToolResultError). A Go error is returned only for faults the
// client cannot fix.
package tools

import (
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/rubabzahra2481/EDNAfrontend-sub001/internal/answers"
	"github.com/rubabzahra2481/EDNAfrontend-sub001/internal/results"
	"github.com/rubabzahra2481/EDNAfrontend-sub001/internal/scoring"
)

// ProfileStore is the persistence the tools rely on. *results.Store
// satisfies it. Tools accept a nil ProfileStore and then only work on
// ad-hoc answers.
type ProfileStore interface {
	Save(respondent string, c *scoring.Composite, all []answers.Answer) (*results.Record, error)
	Get(id string) (*results.Record, error)
	Recent(respondent string, limit int) ([]results.Entry, error)
	Stats() (*results.Stats, error)
	Delete(id string) error
}

// errStoreDisabled is reported by tools that need a store when none is
// configured.
var errStoreDisabled = errors.New("profile storage is disabled on this server")

// intArg extracts an integer argument from a tool request, returning
// defaultVal if the key is missing or not a number (JSON numbers are float64).
func intArg(req mcp.CallToolRequest, key string, defaultVal int) int {
	v, ok := req.GetArguments()[key].(float64)
	if !ok {
		return defaultVal
	}
	return int(v)
}

// boolArg extracts a boolean argument from a tool request.
func boolArg(req mcp.CallToolRequest, key string, defaultVal bool) bool {
	v, ok := req.GetArguments()[key].(bool)
	if !ok {
		return defaultVal
	}
	return v
}

// scoreJSON parses and scores a JSON answer array.
func scoreJSON(raw string) (*scoring.Composite, []answers.Answer, error) {
	all, err := answers.Parse([]byte(raw))
	if err != nil {
		return nil, nil, err
	}
	c, err := scoring.Score(all)
	if err != nil {
		return nil, nil, err
	}
	return c, all, nil
}

// withProfileSource adds the two mutually exclusive ways of naming the
// profile a read-only tool works on.
func withProfileSource() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithString("profile_id",
			mcp.Description("ID of a stored profile (from edna_score or edna_history)"),
		),
		mcp.WithString("answers",
			mcp.Description("JSON array of quiz answers to score on the fly, used when profile_id is empty"),
		),
	}
}

// resolveComposite returns the composite named by profile_id, or scores
// the answers argument. The error is meant for the client.
func resolveComposite(store ProfileStore, req mcp.CallToolRequest) (*scoring.Composite, error) {
	if id := req.GetString("profile_id", ""); id != "" {
		if store == nil {
			return nil, errStoreDisabled
		}
		rec, err := store.Get(id)
		if err != nil {
			return nil, err
		}
		return rec.Composite()
	}

	raw := req.GetString("answers", "")
	if raw == "" {
		return nil, fmt.Errorf("either 'profile_id' or 'answers' is required")
	}
	c, _, err := scoreJSON(raw)
	return c, err
}
