package tracker

import "fmt"

// Mode is the target of the next form submit: creating a new contract, or
// editing the contract with a known ID.
type Mode struct {
	editing bool
	id      int64
}

// Creating is the default mode, where a submit inserts a new contract.
func Creating() Mode {
	return Mode{}
}

// Editing targets the contract with the given ID for the next submit.
func Editing(id int64) Mode {
	return Mode{editing: true, id: id}
}

// IsEditing reports whether the mode targets an existing contract.
func (m Mode) IsEditing() bool {
	return m.editing
}

// ContractID returns the edited contract's ID, or 0 in create mode.
func (m Mode) ContractID() int64 {
	return m.id
}

// SubmitLabel is the caption of the submit button in this mode.
func (m Mode) SubmitLabel() string {
	if m.editing {
		return "Update Contract"
	}
	return "Add Contract"
}

func (m Mode) String() string {
	if m.editing {
		return fmt.Sprintf("editing(%d)", m.id)
	}
	return "creating"
}
