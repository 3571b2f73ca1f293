package physics

import "github.com/oomph-ac/pinball/collider"

// narrowPhase computes the impact of the ball against every candidate. Every impact no later than hitTime is
// added to contacts, and the earliest one becomes the new hitTime, which is returned.
func narrowPhase(ballIndex int, ball *Ball, candidates []collider.Collider, hitTime float32, contacts *ContactBuffer) float32 {
	s := ball.Sphere()
	for _, c := range candidates {
		hit, ok := c.HitTime(s, hitTime)
		if !ok || hit.Time > hitTime {
			continue
		}
		contacts.Add(Contact{
			BallIndex: ballIndex,
			BallID:    ball.ID,
			Collider:  c,
			HitTime:   hit.Time,
			Normal:    hit.Normal,
			Distance:  hit.Distance,
		})
		hitTime = hit.Time
	}
	return hitTime
}
