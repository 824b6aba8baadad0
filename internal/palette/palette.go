/*
 * Copyright 2022 ByteDance Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package palette

import (
    `fmt`
    `sort`
    `strconv`
    `strings`

    `tlog.app/go/errors`
)

const (
    _GenericPrefix = "generic:"
)

var palettes = map[string]func() []string {
    "amd64" : amd64Regs,
    "386"   : i386Regs,
    "arm64" : arm64Regs,
    "simd"  : simdRegs,
}

// Names returns the names of all the builtin palettes, sorted.
func Names() []string {
    ret := make([]string, 0, len(palettes))
    for k := range palettes { ret = append(ret, k) }
    sort.Strings(ret)
    return ret
}

// Lookup returns the register names of a palette. Besides the builtin ones,
// "generic:N" gives N registers named "r0" to "r{N-1}".
func Lookup(name string) ([]string, error) {
    if fn, ok := palettes[name]; ok {
        return fn(), nil
    }

    /* not a generic palette */
    if !strings.HasPrefix(name, _GenericPrefix) {
        return nil, errors.New("unknown palette: %q", name)
    }

    /* parse the register count */
    nb, err := strconv.Atoi(name[len(_GenericPrefix):])
    if err != nil {
        return nil, errors.Wrap(err, "palette %q", name)
    }

    /* must have at least one register */
    if nb <= 0 {
        return nil, errors.New("palette %q: register count must be positive", name)
    }

    /* all done */
    return Generic(nb), nil
}

// Generic returns n registers named "r0" to "r{n-1}".
func Generic(n int) []string {
    ret := make([]string, n)
    for i := range ret { ret[i] = fmt.Sprintf("r%d", i) }
    return ret
}
