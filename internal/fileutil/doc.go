// Package fileutil lists files on the local filesystem for template scanning.
//
// ScanDirectory lists a single directory level with optional glob and
// extension filters and returns absolute paths in sorted order. Globs use doublestar
// syntax and are matched against the file's base name, so "*.png",
// "frame_????.exr" and "{a,b}_*.txt" all behave as they would in a shell.
//
// Listing the frames of a render:
//
//	result, err := fileutil.ScanDirectory("/data/renders", fileutil.ScanOptions{
//	    Glob: "frame_*.exr",
//	})
//	if err != nil {
//	    return err
//	}
//	names := result.Names() // sorted base names
//
// Subdirectories are skipped. Errors on entries below the root are collected in ScanResult.Errors and do not stop the scan;
// a missing root or an invalid glob fails immediately.
package fileutil
