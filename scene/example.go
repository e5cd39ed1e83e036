package scene

// Example is the reference scene: a salmon rectangle, a black triangle, a
// blue disk, a black line and a greeting on a white full-screen canvas.
const Example = `{
  "canvas": {"width": "full", "height": "full", "background": "white"},
  "shapes": [
    {"kind": "rectangle", "x": 10, "y": 10, "width": 50, "height": 80, "color": [255, 100, 100]},
    {"kind": "triangle", "points": [[75, 10], [125, 50], [150, 10]]},
    {"kind": "circle", "x": 150, "y": 120, "radius": 50, "color": "blue"},
    {"kind": "line", "points": [[200, 50], [250, 150]]},
    {"kind": "text", "x": 50, "y": 190, "text": "Hello, World!"}
  ]
}
`

// ExampleDocument returns the parsed reference scene.
func ExampleDocument() *Document {
	doc, err := ParseString(Example)
	if err != nil {
		panic("scene: invalid built-in example: " + err.Error())
	}
	return doc
}
