package models

// RecordID implementations let the generic resource layer report which row a
// change notification is about without reflection.

func (r Room) RecordID() uint       { return r.ID }
func (f Facility) RecordID() uint   { return f.ID }
func (s Service) RecordID() uint    { return s.ID }
func (r Review) RecordID() uint     { return r.ID }
func (l FooterLogo) RecordID() uint { return l.ID }
