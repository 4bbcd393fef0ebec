package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	jmespath "github.com/jmespath-community/go-jmespath"
	"golang.org/x/term"
)

// newFlagSet returns a flag set that reports to the command's stderr.
func (cc *commandContext) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(cc.Err)
	return fs
}

// printJSON writes v as indented JSON, optionally narrowed by a JMESPath query.
func printJSON(w io.Writer, v any, query string) error {
	if query = strings.TrimSpace(query); query != "" {
		filtered, err := applyQuery(v, query)
		if err != nil {
			return err
		}
		v = filtered
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// applyQuery evaluates query over the JSON form of v, so field names match the wire format.
func applyQuery(v any, query string) (any, error) {
	if _, err := jmespath.Compile(query); err != nil {
		return nil, fmt.Errorf("invalid --query: %w", err)
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode output: %w", err)
	}
	var data any
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("decode output: %w", err)
	}
	out, err := jmespath.Search(query, data)
	if err != nil {
		return nil, fmt.Errorf("evaluate --query: %w", err)
	}
	return out, nil
}

// prompt reads one line from stdin after printing label to stderr.
func (cc *commandContext) prompt(label string) (string, error) {
	writef(cc.Err, "%s: ", label)
	line, err := cc.reader.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", fmt.Errorf("read %s: %w", strings.ToLower(label), err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// promptSecret reads a password without echo when stdin is a terminal.
func (cc *commandContext) promptSecret(label string) (string, error) {
	f, ok := cc.In.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return cc.prompt(label)
	}
	writef(cc.Err, "%s: ", label)
	b, err := term.ReadPassword(int(f.Fd()))
	writef(cc.Err, "\n")
	if err != nil {
		return "", fmt.Errorf("read %s: %w", strings.ToLower(label), err)
	}
	return string(b), nil
}

// valueOrPrompt returns v, or asks for it when empty.
func (cc *commandContext) valueOrPrompt(v, label string, secret bool) (string, error) {
	if v != "" {
		return v, nil
	}
	if secret {
		return cc.promptSecret(label)
	}
	return cc.prompt(label)
}
