/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package logging is a helper for the "github.com/op/go-logging" package
// to reduce the lines of code within each go file to one line. The
// functions return Logger instances already configured with a backend
// and formatter, one per engine subsystem.
package logging

import (
	"log"
	"os"

	"github.com/op/go-logging"

	"github.com/chessforge/engine/internal/config"
)

var (
	positionLog  *logging.Logger
	movegenLog   *logging.Logger
	searchLog    *logging.Logger
	ttLog        *logging.Logger
	evaluatorLog *logging.Logger
	engineLog    *logging.Logger

	standardFormat = logging.MustStringFormatter(`%{time:15:04:05.000} %{shortpkg:-8.8s}:%{shortfile:-14.14s} %{level:-7.7s}:  %{message}`)

	levelNames = map[string]logging.Level{
		"critical": logging.CRITICAL,
		"error":    logging.ERROR,
		"warning":  logging.WARNING,
		"notice":   logging.NOTICE,
		"info":     logging.INFO,
		"debug":    logging.DEBUG,
	}
)

func init() {
	positionLog = logging.MustGetLogger("position")
	movegenLog = logging.MustGetLogger("movegen")
	searchLog = logging.MustGetLogger("search")
	ttLog = logging.MustGetLogger("tt")
	evaluatorLog = logging.MustGetLogger("evaluator")
	engineLog = logging.MustGetLogger("engine")
}

func level() logging.Level {
	if l, ok := levelNames[config.Settings.Log.Level]; ok {
		return l
	}
	return logging.INFO
}

func newBackend() logging.LeveledBackend {
	backend := logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	formatted := logging.NewBackendFormatter(backend, standardFormat)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(level(), "")
	return leveled
}

// GetPositionLog returns the logger for internal/position.
func GetPositionLog() *logging.Logger {
	positionLog.SetBackend(newBackend())
	return positionLog
}

// GetMovegenLog returns the logger for internal/movegen.
func GetMovegenLog() *logging.Logger {
	movegenLog.SetBackend(newBackend())
	return movegenLog
}

// GetSearchLog returns the logger for internal/search.
func GetSearchLog() *logging.Logger {
	searchLog.SetBackend(newBackend())
	return searchLog
}

// GetTTLog returns the logger for internal/tt.
func GetTTLog() *logging.Logger {
	ttLog.SetBackend(newBackend())
	return ttLog
}

// GetEvaluatorLog returns the logger for internal/evaluator.
func GetEvaluatorLog() *logging.Logger {
	evaluatorLog.SetBackend(newBackend())
	return evaluatorLog
}

// GetEngineLog returns the logger for the engine package.
func GetEngineLog() *logging.Logger {
	engineLog.SetBackend(newBackend())
	return engineLog
}
