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

package ralloc

// Verify checks that c colors every node of g, and no edge of g connects two
// nodes of the same color.
func Verify(g *Graph, c Coloring) error {
    for _, r := range g.Nodes() {
        if _, ok := c[r]; !ok {
            return ConflictError { X: r }
        }
    }

    /* check every edge */
    for _, e := range g.Edges() {
        if c[e.X] == c[e.Y] {
            return ConflictError { X: e.X, Y: e.Y, Color: c[e.X] }
        }
    }

    /* all done */
    return nil
}
