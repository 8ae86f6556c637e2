// Package models defines the data exchanged with the game backend.
package models
