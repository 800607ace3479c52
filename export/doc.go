// Package export renders an editing session to output formats.
//
// The editor core only produces geometry: a synthesized path, overlay state
// for every anchor and the code text. Backends consume that geometry and
// turn it into pixels, PDF content streams or SVG elements. Keeping the
// backends behind the Backend interface keeps the core free of any
// rendering dependency.
//
// # Architecture
//
// A Scene captures what is drawn:
//   - the live path, stroked
//   - guide lines and handle markers for anchors that show their controls
//   - an anchor marker for every anchor, highlighted when selected
//   - optionally the code text
//
// Render walks a Scene and issues Backend calls in that order.
//
// Backends register themselves by name in init(), following the
// database/sql driver pattern:
//
//	import _ "github.com/gogpu/pathedit/export/raster"
//
//	b, err := export.NewBackend("raster")
//	if err != nil {
//	    return err
//	}
//	if err := export.Render(b, export.SceneOf(ed, 800, 600)); err != nil {
//	    return err
//	}
//	_, err = b.(export.WriterBackend).WriteTo(w)
package export
