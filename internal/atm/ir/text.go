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

package ir

import (
    `fmt`
    `strconv`
    `strings`

    `tlog.app/go/errors`
)

const (
    _T_arrow   = "<-"
    _T_dead    = '!'
    _T_comment = '#'
    _T_quote   = '"'
)

// SyntaxError occures when failed to parse the textual form of an IL.
type SyntaxError struct {
    Line   int
    Src    string
    Reason string
}

func (self SyntaxError) Error() string {
    return fmt.Sprintf("Syntax error at line %d: %s", self.Line, self.Reason)
}

func esyntax(line int, src string, reason string, args ...interface{}) SyntaxError {
    return SyntaxError {
        Line   : line,
        Src    : src,
        Reason : fmt.Sprintf(reason, args...),
    }
}

type _Token struct {
    v string
    q bool
}

func tokenize(src string) ([]_Token, error) {
    var i int
    var ret []_Token

    /* scan every token */
    for i < len(src) {
        switch c := src[i]; {
            case c == ' ' || c == '\t' || c == '\r': {
                i++
            }

            /* comments runs to the end of line */
            case c == _T_comment: {
                return ret, nil
            }

            /* quoted operation names */
            case c == _T_quote: {
                s, err := strconv.QuotedPrefix(src[i:])
                if err != nil {
                    return nil, errors.New("unterminated string at column %d", i + 1)
                }

                /* unquote the string */
                v, err := strconv.Unquote(s)
                if err != nil {
                    return nil, errors.New("invalid string at column %d", i + 1)
                }

                /* add to token list */
                i += len(s)
                ret = append(ret, _Token { v: v, q: true })
            }

            /* bare words */
            default: {
                p := i
                for i < len(src) && !isdelim(src[i]) { i++ }
                ret = append(ret, _Token { v: src[p:i] })
            }
        }
    }

    /* all done */
    return ret, nil
}

func isdelim(c byte) bool {
    return c == ' ' || c == '\t' || c == '\r' || c == _T_comment || c == _T_quote
}

func operand(tk _Token) (Operand, bool) {
    if tk.q || tk.v == "" {
        return Operand{}, false
    } else if r := Reg(tk.v); r.Valid() {
        return Operand { R: r }, true
    } else if r = r[:len(r) - 1]; tk.v[len(tk.v) - 1] == _T_dead && r.Valid() {
        return Operand { R: r, Dead: true }, true
    } else {
        return Operand{}, false
    }
}

func parseOperands(ln int, src string, tk []_Token, ins *Instr) error {
    use := false
    for _, v := range tk {
        if !v.q && v.v == _T_arrow {
            if use {
                return esyntax(ln, src, "duplicated %q", _T_arrow)
            } else {
                use = true
                continue
            }
        }

        /* must be a register */
        op, ok := operand(v)
        if !ok {
            return esyntax(ln, src, "invalid register %q", v.v)
        }

        /* add to definitions or usages */
        if use {
            ins.Uses = append(ins.Uses, op)
        } else {
            ins.Defs = append(ins.Defs, op)
        }
    }
    return nil
}

func parseInstr(ln int, src string, tk []_Token) (*Instr, error) {
    var err error
    var ins *Instr

    /* quoted keywords are not keywords */
    if tk[0].q {
        return nil, esyntax(ln, src, "instruction keyword must not be quoted")
    }

    /* the leading keyword */
    switch tk[0].v {
        default       : return nil, esyntax(ln, src, "unknown instruction %q", tk[0].v)
        case "bb"     : ins, tk = &Instr { Op: OP_bb }, tk[1:]
        case "op"     : ins, tk = &Instr { Op: OP_generic }, tk[1:]
        case "copy"   : ins, tk = &Instr { Op: OP_copy }, tk[1:]
        case "reload" : ins, tk = &Instr { Op: OP_reload }, tk[1:]
        case "spill"  : ins, tk = &Instr { Op: OP_spill }, tk[1:]
    }

    /* instruction specific operands */
    switch ins.Op {
        case OP_bb: {
            if len(tk) == 0 || tk[0].q {
                return nil, esyntax(ln, src, "missing block frequency")
            } else if ins.Freq, err = strconv.ParseFloat(tk[0].v, 64); err != nil {
                return nil, esyntax(ln, src, "invalid block frequency %q", tk[0].v)
            } else {
                tk = tk[1:]
            }
        }

        case OP_generic: {
            if len(tk) == 0 || !tk[0].q {
                return nil, esyntax(ln, src, "missing operation name")
            } else {
                ins.Name, tk = tk[0].v, tk[1:]
            }
        }
    }

    /* parse the operands */
    if err = parseOperands(ln, src, tk, ins); err != nil {
        return nil, err
    }

    /* check for operand count */
    switch ins.Op {
        case OP_copy   : if len(ins.Defs) != 1 || len(ins.Uses) != 1 { return nil, esyntax(ln, src, "copy takes exactly 1 definition and 1 usage") }
        case OP_reload : if len(ins.Defs) != 1 || len(ins.Uses) != 0 { return nil, esyntax(ln, src, "reload takes exactly 1 definition") }
        case OP_spill  : if len(ins.Defs) != 0 || len(ins.Uses) != 1 { return nil, esyntax(ln, src, "spill takes exactly 1 usage") }
    }

    /* all done */
    return ins, nil
}

// Parse parses the textual form of an IL, which is one instruction per line:
//
//     bb <freq> <live-in>...
//     op "<name>" <def>... [<- <use>...]
//     copy <def> <- <use>
//     reload <def>
//     spill <- <use>
//
// A register suffixed with "!" is dead, "#" starts a comment.
func Parse(src string) (*IL, error) {
    ret := new(IL)
    lines := strings.Split(src, "\n")

    /* parse line by line */
    for i, line := range lines {
        tk, err := tokenize(line)
        if err != nil {
            return nil, esyntax(i + 1, line, "%v", err)
        }

        /* skip empty lines */
        if len(tk) == 0 {
            continue
        }

        /* parse the instruction */
        ins, err := parseInstr(i + 1, line, tk)
        if err != nil {
            return nil, err
        }

        /* add to IL */
        ret.Add(ins)
    }

    /* all done */
    return ret, nil
}

func quote(s string) string {
    return strconv.Quote(s)
}

func formatFreq(v float64) string {
    return strconv.FormatFloat(v, 'g', -1, 64)
}
