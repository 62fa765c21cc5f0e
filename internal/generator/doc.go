// Package generator writes, edits and deletes per-map config files.
//
// For every map file (*.bsp) in a directory, optionally narrowed by a
// whitelist of map names, a Request applies one Operation to the config
// next to it: <map>.cfg, or <map>_skl.cfg for skill configs.
//
//	gen := generator.New(nil)
//	n, err := gen.Create(generator.Request{
//	    Cvars:     "mp_timelimit 20\nmp_flashlight 1",
//	    Operation: generator.Overwrite,
//	    Dir:       "maps",
//	})
//
// # Operations
//
//	Overwrite  write cvars plus a trailing newline, truncating the target
//	Append     append cvars plus a trailing newline, creating the target
//	Remove     delete each cvar line wherever it occurs in the target
//	Delete     remove the target
//
// Remove and Delete skip maps without a config. A request is rejected with
// count -1 before any file is touched when it has no cvars (except
// Delete), when the directory holds no maps, or when the whitelist
// matches none of them.
package generator
