package models

// SetOwner grava o dono (tenant) da linha antes da criação.

func (c *Client) SetOwner(userID uint)       { c.UserID = userID }
func (p *Professional) SetOwner(userID uint) { p.UserID = userID }
func (s *Service) SetOwner(userID uint)      { s.UserID = userID }
func (p *Product) SetOwner(userID uint)      { p.UserID = userID }
func (i *Inventory) SetOwner(userID uint)    { i.UserID = userID }
func (a *Appointment) SetOwner(userID uint)  { a.UserID = userID }
func (t *Transaction) SetOwner(userID uint)  { t.UserID = userID }
