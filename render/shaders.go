// SPDX-License-Identifier: GPL-2.0-or-later

package render

const (
	vertexSceneSource = `
#version 330
layout (location = 0) in vec3 position;
layout (location = 1) in vec2 texcoord;
out vec2 Texcoord;
uniform mat4 projection;
uniform mat4 modelview;

void main() {
	Texcoord = texcoord;
	gl_Position = projection * modelview * vec4(position, 1.0);
}
` + "\x00"

	vertexScreenSource = `
#version 330
layout (location = 0) in vec2 position;
layout (location = 1) in vec2 texcoord;
out vec2 Texcoord;

void main() {
	Texcoord = texcoord;
	gl_Position = vec4(position, 0.0, 1.0);
}
` + "\x00"

	fragmentVideoSource = `
#version 330
in vec2 Texcoord;
out vec4 frag_color;
uniform sampler2D tex_luma;
uniform sampler2D tex_chroma;

void main() {
	float y = texture(tex_luma, Texcoord).r;
	vec2 uv = texture(tex_chroma, Texcoord).rg - 0.5;
	float r = y + 1.402 * uv.y;
	float g = y - 0.344 * uv.x - 0.714 * uv.y;
	float b = y + 1.772 * uv.x;
	frag_color = vec4(r, g, b, 1.0);
}
` + "\x00"

	fragmentOverlaySource = `
#version 330
in vec2 Texcoord;
out vec4 frag_color;
uniform sampler2D tex;

void main() {
	frag_color = texture(tex, Texcoord);
}
` + "\x00"

	fragmentDistortSource = `
#version 330
in vec2 Texcoord;
out vec4 frag_color;
uniform sampler2D tex;
uniform float lens_radius;
uniform float lens_center_offset;
uniform float scale_factor;

void main() {
	float side = Texcoord.x < 0.5 ? 0.0 : 1.0;
	float eye_sign = side * 2.0 - 1.0;
	vec2 center = vec2(0.25 + 0.5 * side - eye_sign * lens_center_offset, 0.5);
	vec2 d = Texcoord - center;
	d.x *= 2.0;
	float r2 = dot(d, d) / (lens_radius * lens_radius);
	vec2 warped = d * scale_factor * (1.0 + 0.25 * r2 + 0.15 * r2 * r2);
	warped.x *= 0.5;
	vec2 src = center + warped;
	float lo = side * 0.5;
	if (src.x < lo || src.x > lo + 0.5 || src.y < 0.0 || src.y > 1.0) {
		frag_color = vec4(0.0, 0.0, 0.0, 1.0);
	} else {
		frag_color = texture(tex, src);
	}
}
` + "\x00"
)
