package typestest

import "testing"

func TestFixturesCoverEveryVariant(t *testing.T) {
	Characters(t)
	Effects(t)
	Items(t)
}
