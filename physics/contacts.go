package physics

import "github.com/solarlune/resolv"

// Contacts answers the controller's per-frame collision questions for one box.
type Contacts struct {
	Object *resolv.Object
}

func (c Contacts) IsGrounded() bool {
	return c.Object != nil && IsGrounded(c.Object)
}

func (c Contacts) IsTouchingHazard() bool {
	return c.Object != nil && Touching(c.Object, TagWater) != nil
}
