/*
 * MIT License
 *
 * Copyright (c) 2026 Nicolas JUHEL
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
 *
 *
 */

// Package control implements the control plane (C12): a per-kind registry
// mapping NodeName to a live component, diffing reload requests into one of
// {NoAction, ReloadOnlyConfig, Reload, ReloadAndRespawn, SpawnNew} and
// fanning out dependent notifications over bounded-lag broadcast channels
// (spec §4.12). The registry itself is built on the generic keyed-context
// map already used for request-scoped config elsewhere in this module.
package control

import (
	liberr "github.com/nabbar/netcore/errors"
)

const (
	ErrorUnknownComponent liberr.CodeError = liberr.MinPkgControl + iota
	ErrorAlreadyExists
)

func init() {
	liberr.RegisterIdFctMessage(ErrorUnknownComponent, getMessage)
}

func getMessage(code liberr.CodeError) string {
	switch code {
	case ErrorUnknownComponent:
		return "component not found in registry"
	case ErrorAlreadyExists:
		return "component already registered under this name"
	}

	return ""
}
