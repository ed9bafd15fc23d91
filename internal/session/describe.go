package session

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"
)

// Descriptions returns the listing descriptions the generator picks from
func Descriptions(title string) []string {
	t := strings.ToLower(title)
	return []string{
		fmt.Sprintf("This %s is in excellent condition and has been gently used. Perfect for eco-conscious buyers looking for sustainable alternatives. By choosing this pre-owned item, you're contributing to a circular economy and reducing environmental impact.", t),
		fmt.Sprintf("A well-maintained %s that's ready for a new home. This eco-friendly choice helps reduce waste and gives this quality item a second life. Great value for environmentally conscious shoppers.", t),
		fmt.Sprintf("This carefully preserved %s offers both quality and sustainability. Previously owned but well-cared for, it's an excellent choice for those who want to make responsible purchasing decisions while getting great value.", t),
	}
}

// GenerateDescription drafts a description for a listing title after the
// configured delay
func (s *Session) GenerateDescription(ctx context.Context, title string) (string, error) {
	timer := time.NewTimer(s.cfg.DescribeDelay)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
		return "", ctx.Err()
	}

	options := Descriptions(title)
	return options[rand.IntN(len(options))], nil
}
