// Package prompt reads answers to interactive questions, one line at a time.
package prompt
