/*
 * Copyright 2022 CloudWeGo Authors
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

package opts

import (
	"github.com/xyproto/env/v2"

	"github.com/cloudwego/kempe/internal/atm/ralloc"
)

const (
	_DefaultMaxSpillRounds = ralloc.DefaultMaxSpillRounds // a single spill-and-retry cycle
	_DefaultColorPicker    = ralloc.PickLowest            // reproducible colorings
)

var (
	MaxSpillRounds = parseOrDefault("KEMPE_MAX_SPILL_ROUNDS", _DefaultMaxSpillRounds, 1)
	ColorPicker    = pickerOrDefault("KEMPE_COLOR_PICKER", _DefaultColorPicker)
	Verify         = !env.Has("KEMPE_VERIFY") || env.Bool("KEMPE_VERIFY")
)

func parseOrDefault(key string, def int, min int) int {
	if !env.Has(key) {
		return def
	} else if ret := env.Int(key, min-1); ret < min {
		panic("kempe: invalid value for " + key)
	} else {
		return ret
	}
}

func pickerOrDefault(key string, def string) string {
	if name := env.Str(key, def); name == "" {
		return def
	} else if _, err := ralloc.PickerByName(name); err != nil {
		panic("kempe: invalid value for " + key)
	} else {
		return name
	}
}
