package section

// Controller owns the active section. The zero value is not ready for
// use; call NewController.
type Controller struct {
	active Section
}

func NewController() *Controller {
	return &Controller{active: Initial}
}

// Select makes s the active section. Selecting the active section is a no-op.
func (c *Controller) Select(s Section) error {
	if !s.Valid() {
		return ErrUnknownSection
	}
	c.active = s
	return nil
}

// SelectID parses id and selects it.
func (c *Controller) SelectID(id string) error {
	s, err := Parse(id)
	if err != nil {
		return err
	}
	return c.Select(s)
}

func (c *Controller) Active() Section { return c.active }

func (c *Controller) IsActive(s Section) bool { return c.active == s }

// Next moves to the following tab, wrapping around.
func (c *Controller) Next() Section {
	c.active = order[(c.active.Index()+1)%len(order)]
	return c.active
}

// Prev moves to the previous tab, wrapping around.
func (c *Controller) Prev() Section {
	c.active = order[(c.active.Index()+len(order)-1)%len(order)]
	return c.active
}
