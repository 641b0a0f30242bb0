// Package errors provides the classified error primitives used across wikigen.
//
// Build failures fall into a small taxonomy so the CLI can report them
// consistently and pick an exit code:
//   - CategoryValidation: a record failed structural validation
//   - CategoryReference: a referenced example, image or content file is missing
//   - CategoryModel: a record is structurally valid but inconsistent (no populated
//     context, declared returns without values, ...)
//   - CategoryConfig, CategoryFileSystem, CategoryRender, CategoryInternal
//
// Soft omissions (unresolved see_also tags, duplicate category names, reused
// preview images) are never errors and do not pass through this package.
//
// Example usage:
//
//	err := errors.ReferenceError("example file not found").
//		WithContext("file", recordPath).
//		WithContext("path", examplePath).
//		Build()
package errors
