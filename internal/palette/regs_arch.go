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
    `strings`

    `github.com/klauspost/cpuid/v2`
    `golang.org/x/arch/arm64/arm64asm`
    `golang.org/x/arch/x86/x86asm`
)

var i386Alloc = [...]x86asm.Reg {
    x86asm.EAX,
    x86asm.ECX,
    x86asm.EDX,
    x86asm.EBX,
    x86asm.ESI,
    x86asm.EDI,
}

func i386Regs() []string {
    ret := make([]string, len(i386Alloc))
    for i, r := range i386Alloc { ret[i] = strings.ToLower(r.String()) }
    return ret
}

const (
    _ARM64Regs     = 29    // X0 ~ X28, X29 is the frame pointer
    _ARM64Platform = 18    // X18 is reserved by the platform
)

func arm64Regs() []string {
    ret := make([]string, 0, _ARM64Regs - 1)

    /* skip the platform register */
    for i := 0; i < _ARM64Regs; i++ {
        if i != _ARM64Platform {
            ret = append(ret, strings.ToLower((arm64asm.X0 + arm64asm.Reg(i)).String()))
        }
    }

    /* all done */
    return ret
}

// simdRegs returns the vector registers of the host, 32 ZMM registers with
// AVX-512, 16 YMM registers with AVX, or 16 XMM registers otherwise.
func simdRegs() []string {
    var nb int
    var fm string

    /* check for CPU features */
    switch {
        case cpuid.CPU.Supports(cpuid.AVX512F) : nb, fm = 32, "zmm%d"
        case cpuid.CPU.Supports(cpuid.AVX)     : nb, fm = 16, "ymm%d"
        default                                : nb, fm = 16, "xmm%d"
    }

    /* generate the register names */
    ret := make([]string, nb)
    for i := range ret { ret[i] = fmt.Sprintf(fm, i) }
    return ret
}
