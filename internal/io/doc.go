// Package ioutils provides file system and image helpers for the library
// store, playlist export and project artwork.
//
// This package contains functions for:
//   - File copying and writing, creating parent directories as needed
//   - Filename sanitization for cross-platform compatibility
//   - Directory creation
//   - Image resizing and format conversion
//
// # File Operations
//
//	// Write a document, creating data/ if needed
//	err := ioutils.WriteFile(ctx, "data/library.json", doc)
//
//	// Copy a file
//	err := ioutils.CopyFile(ctx, "/src/cover.webp", "data/images/roxy.webp")
//
// # Filename Sanitization
//
// Use SanitizeFileName to remove invalid characters from filenames:
//
//	safe := ioutils.SanitizeFileName("Demos: 2/3") // Returns "Demos_ 2_3"
//
// # Image Processing
//
// The ImageService prepares project artwork:
//
//	svc := ioutils.NewImageService()
//
//	// Shrink to fit within 500x500, re-encoded as JPEG
//	thumb, _ := svc.ResizeImage(ctx, imageData, 500, 500)
//
//	// Convert to JPEG
//	jpeg, _ := svc.ConvertToJPEG(ctx, pngData)
package ioutils
