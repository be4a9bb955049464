package eigen

import (
	"fmt"

	dft "github.com/rmera/godft"
)

//Errors

//errDecorate asserts that err implements dft.Error and decorates it with the
//caller's name before returning it.
func errDecorate(err error, caller string) error {
	err2 := err.(dft.Error)
	err2.Decorate(caller)
	return err2
}

// Error is the error type for the eigen package. It fulfills dft.Error and
// dft.CriticalError.
type Error struct {
	message  string
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return fmt.Sprintf("eigen: %s", err.message)
}

//Decorate adds new information to the error.
func (E Error) Decorate(deco string) []string {
	//Even though this method does not use a pointer as a receiver, and tries to alter the receiver,
	//it should work, since E.deco is a slice, and hence a pointer itself.
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

//Critical returns true if the error is critical, false otherwise.
func (err Error) Critical() bool { return err.critical }

const (
	InfeasibleBands = "n_bands + n_bands_extra exceeds half the smallest basis size"
	BadInitialGuess = "initial guess has the wrong number of bands"
	NilCollaborator = "given a nil Hamiltonian or Basis"
)
