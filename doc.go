// Package pdfstitch merges PDFs and raster images into a single PDF,
// driven by a declarative configuration.
//
// # Quick Start
//
// Create a service and process a configuration:
//
//	svc := pdfstitch.New()
//	written, err := svc.Process(ctx, "merge.json", "out.pdf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("wrote", written)
//
// # Configuration
//
// The configuration is a JSON document with a top-level "files" array. Each
// element is either a path (file or directory) or an object grouping paths
// under shared transformation options:
//
//	{
//	  "files": [
//	    "cover.pdf",
//	    {"files": ["scans"], "options": ["recursive", "rotate90"]},
//	    {"files": ["appendix.pdf"], "options": ["flipH"]}
//	  ]
//	}
//
// Options propagate into nested scopes; a child's options are appended to its
// parent's, keeping first-seen order and dropping duplicates. The "recursive"
// option is a traversal directive rather than a page transformation: it makes
// directory expansion descend into subdirectories for that scope.
//
// # Transformations
//
// Recognized page transformations are rotate90, rotate180, rotate270 (applied
// to the page rotation attribute, composing mod 360), and flipH, flipV
// (mirroring applied to the page content, offset by the media box so the page
// stays in place). Options apply left to right; unknown names are logged and
// ignored.
//
// # Pipeline
//
// Processing runs in fixed stages:
//
//  1. Output conflict resolution (overwrite, rename to name_N.ext, or abort)
//  2. Configuration load and validation
//  3. Flattening to an ordered (path, options) list
//  4. Per-file conversion (PDF pages read directly; png/jpg/jpeg/tiff/bmp
//     converted to single-page PDFs) and transformation
//  5. A single write of the assembled document
//
// Per-file failures (missing paths, unsupported or unreadable files) are
// logged and skipped; the run only fails on configuration errors, a write
// error, or a user abort.
//
// # Customization
//
// Use functional options to inject collaborators:
//
//	svc := pdfstitch.New(
//	    pdfstitch.WithLogger(logger),
//	    pdfstitch.WithConflictPolicy(pdfstitch.OverwritePolicy{}),
//	)
package pdfstitch
