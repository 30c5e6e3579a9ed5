//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package config holds globally available configuration variables, either
// defaulted in each sub-config's init(), read from a TOML file, or
// overridden by command line flags (see cmd/xiangqi).
package config

import (
	"fmt"
	"log"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/hzyun/xiangqi/internal/util"
)

// globally available config values.
var (
	// ConfFile holds the path to the config file (relative to the working
	// directory unless absolute).
	ConfFile = "./config.toml"

	// LogLevel is the general log level, overridable by cmd line or file.
	LogLevel = 4

	// SearchLogLevel is the search-tracing log level.
	SearchLogLevel = 2

	// Settings is the global configuration, read in from file over the
	// defaults set by each sub-config's init().
	Settings conf

	initialized = false
)

type conf struct {
	Log    logConfiguration
	Search searchConfiguration
	Eval   evalConfiguration
}

// Setup reads the configuration file (if present) and applies it over the
// defaults. Safe to call more than once; only the first call has effect.
func Setup() {
	if initialized {
		return
	}
	path, err := util.ResolveFile(ConfFile)
	if err != nil {
		log.Println("config: no config file found, using defaults:", err)
	} else if _, err := toml.DecodeFile(path, &Settings); err != nil {
		log.Println("config: could not parse config file, using defaults:", err)
	}
	setupLogLvl()
	setupSearch()
	setupEval()
	initialized = true
}

// String renders the current configuration for diagnostic logging.
func (c *conf) String() string {
	var sb strings.Builder
	sb.WriteString("Search Config:\n")
	writeFields(&sb, reflect.ValueOf(&c.Search).Elem())
	sb.WriteString("\nEvaluation Config:\n")
	writeFields(&sb, reflect.ValueOf(&c.Eval).Elem())
	return sb.String()
}

func writeFields(sb *strings.Builder, v reflect.Value) {
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		fmt.Fprintf(sb, "%-2d: %-24s %-8s = %v\n", i, t.Field(i).Name, v.Field(i).Type(), v.Field(i).Interface())
	}
}
