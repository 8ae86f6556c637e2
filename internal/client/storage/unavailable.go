package storage

import "context"

// Unavailable is a Storage whose every operation fails with ErrUnavailable.
type Unavailable struct{}

func (Unavailable) Get(context.Context, string) (string, error) { return "", ErrUnavailable }
func (Unavailable) Set(context.Context, string, string) error   { return ErrUnavailable }
func (Unavailable) Remove(context.Context, string) error        { return ErrUnavailable }
