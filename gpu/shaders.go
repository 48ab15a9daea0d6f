// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpu

import (
	_ "embed"
	"errors"
	"fmt"
	"slices"

	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"
)

// Shader names.
const (
	ShaderCopy      = "copy"
	ShaderDepthPick = "depth_pick"
)

// ErrUnknownShader is returned for a shader name not shipped with photomode.
var ErrUnknownShader = errors.New("gpu: unknown shader")

//go:embed shaders/copy.wgsl
var copyShaderSource string

//go:embed shaders/depth_pick.wgsl
var depthPickShaderSource string

var shaderSources = map[string]string{
	ShaderCopy:      copyShaderSource,
	ShaderDepthPick: depthPickShaderSource,
}

// Shaders returns the names of the WGSL shaders host renderers can use to
// build the capture and depth picking pipelines.
func Shaders() []string {
	names := make([]string, 0, len(shaderSources))
	for name := range shaderSources {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ShaderSource returns the WGSL source of the named shader.
func ShaderSource(name string) (string, error) {
	src, ok := shaderSources[name]
	if !ok {
		return "", fmt.Errorf("%q: %w", name, ErrUnknownShader)
	}
	return src, nil
}

// CompileSPIRV compiles the named shader to SPIR-V words.
func CompileSPIRV(name string) ([]uint32, error) {
	src, err := ShaderSource(name)
	if err != nil {
		return nil, err
	}
	code, err := naga.Compile(src)
	if err != nil {
		return nil, fmt.Errorf("compile %s shader: %w", name, err)
	}
	// SPIR-V is little-endian 32-bit words.
	words := make([]uint32, len(code)/4)
	for i := range words {
		words[i] = uint32(code[i*4]) |
			uint32(code[i*4+1])<<8 |
			uint32(code[i*4+2])<<16 |
			uint32(code[i*4+3])<<24
	}
	return words, nil
}

// ShaderModule creates a shader module for the named shader on d. The
// caller owns the module.
func (d *Device) ShaderModule(name string) (hal.ShaderModule, error) {
	src, err := ShaderSource(name)
	if err != nil {
		return nil, err
	}
	m, err := d.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "photomode_" + name + "_shader",
		Source: hal.ShaderSource{WGSL: src},
	})
	if err != nil {
		return nil, fmt.Errorf("create %s shader module: %w", name, err)
	}
	return m, nil
}
