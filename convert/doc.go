// Package convert orchestrates the full conversion of diarization JSON
// documents into EAF files.
//
// File handles one input; Dir walks a directory of *.json inputs with a
// bounded worker pool where each file's build is fully independent, so a
// single failure never aborts the remaining files.
package convert
