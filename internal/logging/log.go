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

// Package logging is a thin helper around github.com/op/go-logging that
// hands out the two loggers the rest of the engine uses: a general
// "engine" logger (config, FEN errors, book load failures) and a "search"
// logger (iterative-deepening tracing), both leveled from internal/config.
package logging

import (
	"os"

	"github.com/op/go-logging"

	"github.com/hzyun/xiangqi/internal/config"
)

var (
	engineLog *logging.Logger
	searchLog *logging.Logger

	format = logging.MustStringFormatter(
		`%{time:15:04:05.000} %{shortpkg:-8.8s}:%{shortfile:-14.14s} %{level:-7.7s}:  %{message}`)
)

func init() {
	engineLog = logging.MustGetLogger("engine")
	searchLog = logging.MustGetLogger("search")
}

func backend(level int) logging.Backend {
	raw := logging.NewLogBackend(os.Stdout, "", 0)
	formatted := logging.NewBackendFormatter(raw, format)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.Level(level), "")
	return leveled
}

// GetLog returns the general-purpose engine logger, leveled from
// config.LogLevel.
func GetLog() *logging.Logger {
	engineLog.SetBackend(backend(config.LogLevel))
	return engineLog
}

// GetSearchLog returns the search-tracing logger, leveled from
// config.SearchLogLevel.
func GetSearchLog() *logging.Logger {
	searchLog.SetBackend(backend(config.SearchLogLevel))
	return searchLog
}
