package main

import (
	"flag"
	"math"
	"runtime"
	"time"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/shade"
)

// A pulsing triangle driven through the parameter dictionary: the shader
// declares one vec4 uniform, the dictionary owns its value, and every
// frame mutates the cell and refills the storage through the link built
// once at startup.
const shaderCode = `
@group(0) @binding(0) var<uniform> color: vec4<f32>;

@vertex
fn vs_main(@builtin(vertex_index) idx: u32) -> @builtin(position) vec4<f32> {
	var pos = array<vec2<f32>, 3>(
		vec2<f32>(0.0, 0.5),
		vec2<f32>(-0.5, -0.5),
		vec2<f32>(0.5, -0.5),
	);
	return vec4<f32>(pos[idx], 0.0, 1.0);
}

@fragment
fn fs_main() -> @location(0) vec4<f32> {
	return color;
}
`

func init() {
	runtime.LockOSThread()
}

func main() {
	debug := flag.Bool("debug", false, "Enable link debug logging")
	flag.Parse()

	shade.SetLogger(shade.NewDefaultLogger("shade-demo", *debug))

	if err := glfw.Init(); err != nil {
		panic(err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, glfw.False)
	window, err := glfw.CreateWindow(800, 600, "shade demo", nil, nil)
	if err != nil {
		panic(err)
	}
	defer window.Destroy()

	instance := wgpu.CreateInstance(nil)
	defer instance.Release()
	surface := instance.CreateSurface(wgpuglfw.GetSurfaceDescriptor(window))
	adapter, err := instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface: surface,
		PowerPreference:   wgpu.PowerPreferenceHighPerformance,
	})
	if err != nil {
		panic(err)
	}
	device, err := adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "Demo Device",
	})
	if err != nil {
		panic(err)
	}
	queue := device.GetQueue()

	caps := surface.GetCapabilities(adapter)
	surfaceConfig := wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      caps.Formats[0],
		Width:       800,
		Height:      600,
		PresentMode: wgpu.PresentModeFifo,
		AlphaMode:   caps.AlphaModes[0],
	}
	surface.Configure(adapter, device, &surfaceConfig)

	shader, err := device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          "triangle",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: shaderCode},
	})
	if err != nil {
		panic(err)
	}
	defer shader.Release()

	pipeline, err := device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Vertex: wgpu.VertexState{
			Module:     shader,
			EntryPoint: "vs_main",
		},
		Fragment: &wgpu.FragmentState{
			Module:     shader,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{
				{
					Format:    surfaceConfig.Format,
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeNone,
		},
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		panic(err)
	}
	defer pipeline.Release()

	// What reflection would report for the triangle shader.
	info := shade.NewProgramInfo(
		[]shade.UniformVar{{Name: "color", Kind: shade.KindFloatVec4}},
		nil, nil,
	)
	layout := &shade.BindingLayout{
		Uniforms: []shade.BindingSlot{{Group: 0, Binding: 0}},
	}

	dict := shade.NewParamDictionary().
		AddUniform("color", shade.UniformVec4(mgl32.Vec4{1, 0, 0, 1}))

	link, err := dict.CreateLink(info)
	if err != nil {
		panic(err)
	}

	storage := shade.NewParamStorage(info)
	uniformBuffers, err := shade.CreateUniformBuffers(device, info)
	if err != nil {
		panic(err)
	}

	// The storage layout is stable per program, so bind groups are built
	// once from the first fill; later frames only rewrite buffer contents.
	dict.FillParams(link, storage)
	grouped := shade.GroupedBindings(storage, layout, uniformBuffers)
	bindGroups, err := shade.CreateBindGroups(grouped, pipeline, device)
	if err != nil {
		panic(err)
	}

	start := time.Now()
	for !window.ShouldClose() {
		glfw.PollEvents()

		t := time.Since(start).Seconds()
		pulse := 0.5 + 0.5*float32(math.Sin(t))
		dict.SetUniform("color", shade.UniformVec4(mgl32.Vec4{pulse, 0.2, 1 - pulse, 1}))

		storage.Reset()
		dict.FillParams(link, storage)
		if err := shade.WriteUniforms(queue, storage, uniformBuffers); err != nil {
			panic(err)
		}

		renderFrame(surface, device, queue, pipeline, bindGroups)
	}
}

func renderFrame(surface *wgpu.Surface, device *wgpu.Device, queue *wgpu.Queue, pipeline *wgpu.RenderPipeline, bindGroups map[uint32]*wgpu.BindGroup) {
	nextTexture, err := surface.GetCurrentTexture()
	if err != nil {
		panic(err)
	}
	view, err := nextTexture.CreateView(nil)
	if err != nil {
		panic(err)
	}
	defer view.Release()

	encoder, err := device.CreateCommandEncoder(nil)
	if err != nil {
		panic(err)
	}
	defer encoder.Release()

	renderPass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       view,
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: wgpu.Color{R: 0.05, G: 0.05, B: 0.08, A: 1.0},
			},
		},
	})
	defer renderPass.Release()

	renderPass.SetPipeline(pipeline)
	for groupId, bindGroup := range bindGroups {
		renderPass.SetBindGroup(groupId, bindGroup, nil)
	}
	renderPass.Draw(3, 1, 0, 0)
	if err := renderPass.End(); err != nil {
		panic(err)
	}

	cmdBuffer, err := encoder.Finish(nil)
	if err != nil {
		panic(err)
	}
	defer cmdBuffer.Release()

	queue.Submit(cmdBuffer)
	surface.Present()
}
