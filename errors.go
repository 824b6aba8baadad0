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

package kempe

import (
	"github.com/cloudwego/kempe/internal/atm/ir"
	"github.com/cloudwego/kempe/internal/atm/ralloc"
)

type (
	// SyntaxError occures when failed to parse the textual IL.
	SyntaxError = ir.SyntaxError

	// UncolorableError occures when the IL is still uncolorable after spilling.
	UncolorableError = ralloc.UncolorableError

	// ConflictError occures when a coloring fails verification.
	ConflictError = ralloc.ConflictError
)

// ErrNoColors is returned by Allocate when there are no colors to allocate from.
var ErrNoColors = ralloc.ErrNoColors
