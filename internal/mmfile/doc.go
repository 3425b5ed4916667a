// Package mmfile maps tree files into memory for read-only decoding.
//
// On unix systems the file is mapped with mmap(2); elsewhere it is read
// into a heap buffer. Either way the caller must invoke the returned
// release function once it no longer needs the bytes.
package mmfile
