// Package workspace tracks the set of files a conversation is working on and
// implements the slash commands that manage it:
//
//	/add <path>                  start tracking an existing file
//	/remove <path>  (or /drop)   stop tracking a file
//	/edit <path> <old> => <new>  replace every occurrence of old in a tracked file
//	/files                       list tracked files
//
// Files live on an afero.Fs rooted at the workspace sandbox. Paths are
// relative; absolute paths and parent traversal are rejected.
package workspace
