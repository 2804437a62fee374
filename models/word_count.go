package models

// WordCount is a distinct word and the number of times it occurs in one file.
type WordCount struct {
	Word  string `json:"word" yaml:"word"`
	Count uint32 `json:"count" yaml:"count"`
}

// FileResult is the sorted word list for one input file.
type FileResult struct {
	Filename string
	Words    []WordCount
}
