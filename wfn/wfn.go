package wfn

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
	dft "github.com/rmera/godft"
)

//Write!

// Writer writes one orbital checkpoint to a compressed file.
type Writer struct {
	f         *os.File
	h         io.WriteCloser
	filename  string
	writeable bool
}

//NewWriter creates the named checkpoint file and writes the given header to
//it. Compression is chosen from the file name: gzip for .gz, zstd for
//anything else. Only the first map is read.
func NewWriter(name string, header map[string]string) (*Writer, error) {
	W := new(Writer)
	var err error
	W.f, err = os.Create(name)
	if err != nil {
		return nil, Error{UnableToOpen + ": " + err.Error(), name, []string{"NewWriter"}, true}
	}
	if strings.HasSuffix(strings.ToLower(name), ".gz") {
		W.h = gzip.NewWriter(W.f)
	} else {
		W.h, err = zstd.NewWriter(W.f, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
		if err != nil {
			return nil, Error{err.Error(), name, []string{"NewWriter"}, true}
		}
	}
	W.filename = name
	W.writeable = true
	for k, v := range header {
		if strings.ContainsAny(k, "=\n*") || strings.Contains(v, "\n") {
			return nil, Error{fmt.Sprintf("bad header entry %q=%q", k, v), name, []string{"NewWriter"}, true}
		}
		fmt.Fprintf(W.h, "%s=%s\n", k, v)
	}
	return W, nil
}

//WriteOrbitals writes the coefficient block C and its eigenvalues E (which
//may be nil if none are known yet) as the payload of the checkpoint.
func (W *Writer) WriteOrbitals(C *dft.Orbitals, E [][]float64) error {
	if !W.writeable {
		return Error{UnIniWrite, W.filename, []string{"WriteOrbitals"}, true}
	}
	if C == nil {
		return Error{NilOrbitals, W.filename, []string{"WriteOrbitals"}, true}
	}
	if E != nil && len(E) != C.NBlocks() {
		return Error{fmt.Sprintf("%d eigenvalue sets for %d blocks", len(E), C.NBlocks()), W.filename, []string{"WriteOrbitals"}, true}
	}
	fmt.Fprintf(W.h, "** %d %d %d\n", C.NSpins(), C.NKpts(), C.NBands())
	sizes := make([]string, C.NKpts())
	for k := range sizes {
		sizes[k] = strconv.Itoa(C.BasisSize(k))
	}
	fmt.Fprintf(W.h, "*sizes %s\n", strings.Join(sizes, " "))
	for i := 0; i < C.NBlocks(); i++ {
		fmt.Fprintf(W.h, "*block %d\n", i)
		if E == nil {
			fmt.Fprintln(W.h, "*eig none")
		} else {
			fmt.Fprintf(W.h, "*eig %s\n", floatLine(E[i]))
		}
		b := C.Block(i)
		rows, _ := b.Dims()
		for j := 0; j < rows; j++ {
			fmt.Fprintln(W.h, floatLine(b.RawRowView(j)))
		}
	}
	return nil
}

//Close flushes and closes the checkpoint. The Writer cannot be used
//afterwards.
func (W *Writer) Close() {
	if W == nil {
		return
	}
	if W.writeable {
		W.h.Close()
		W.f.Close()
	}
	W.writeable = false
}

func floatLine(v []float64) string {
	s := make([]string, len(v))
	for i, x := range v {
		s[i] = strconv.FormatFloat(x, 'g', 17, 64)
	}
	return strings.Join(s, " ")
}

//Read!

// Reader reads back a checkpoint written by Writer. The header map fills in
// as ReadOrbitals runs, since the header precedes the payload in the file.
type Reader struct {
	f        *os.File
	z        io.Closer
	h        *bufio.Scanner
	filename string
	header   map[string]string
	readable bool
}

//zstd.Decoder.Close returns nothing, so it cannot be an io.Closer by itself.
type zstdql struct {
	*zstd.Decoder
}

func (z zstdql) Close() error {
	z.Decoder.Close()
	return nil
}

//NewReader opens the named checkpoint for reading.
func NewReader(name string) (*Reader, error) {
	R := new(Reader)
	var err error
	R.f, err = os.Open(name)
	if err != nil {
		return nil, Error{UnableToOpen + ": " + err.Error(), name, []string{"NewReader"}, true}
	}
	var raw io.Reader
	if strings.HasSuffix(strings.ToLower(name), ".gz") {
		g, err := gzip.NewReader(R.f)
		if err != nil {
			return nil, Error{err.Error(), name, []string{"NewReader"}, true}
		}
		raw, R.z = g, g
	} else {
		d, err := zstd.NewReader(R.f)
		if err != nil {
			return nil, Error{err.Error(), name, []string{"NewReader"}, true}
		}
		raw, R.z = d, zstdql{d}
	}
	R.h = bufio.NewScanner(raw)
	R.h.Buffer(make([]byte, 1024*1024), 64*1024*1024) //coefficient lines get long
	R.filename = name
	R.header = make(map[string]string)
	R.readable = true
	return R, nil
}

//Header returns the key=value metadata of the checkpoint.
func (R *Reader) Header() map[string]string { return R.header }

//ReadOrbitals reads the payload: the coefficient block and, if the
//checkpoint carries them, the eigenvalues (nil otherwise).
func (R *Reader) ReadOrbitals() (*dft.Orbitals, [][]float64, error) {
	if !R.readable {
		return nil, nil, Error{UnIniRead, R.filename, []string{"ReadOrbitals"}, true}
	}
	//header lines until the "**" dimensions line
	var nspins, nk, nbands int
	for {
		line, err := R.line("ReadOrbitals")
		if err != nil {
			return nil, nil, err
		}
		if strings.HasPrefix(line, "** ") {
			if _, err := fmt.Sscanf(line, "** %d %d %d", &nspins, &nk, &nbands); err != nil {
				return nil, nil, Error{WrongFormat + ": " + line, R.filename, []string{"ReadOrbitals"}, true}
			}
			break
		}
		k, v, ok := strings.Cut(line, "=")
		if !ok {
			return nil, nil, Error{WrongFormat + ": " + line, R.filename, []string{"ReadOrbitals"}, true}
		}
		R.header[k] = v
	}
	line, err := R.line("ReadOrbitals")
	if err != nil {
		return nil, nil, err
	}
	fields := strings.Fields(line)
	if len(fields) != nk+1 || fields[0] != "*sizes" {
		return nil, nil, Error{WrongFormat + ": " + line, R.filename, []string{"ReadOrbitals"}, true}
	}
	sizes := make([]int, nk)
	for k := range sizes {
		if sizes[k], err = strconv.Atoi(fields[k+1]); err != nil {
			return nil, nil, Error{WrongFormat + ": " + line, R.filename, []string{"ReadOrbitals"}, true}
		}
	}
	C, err := dft.NewOrbitals(nspins, nk, nbands, sizes)
	if err != nil {
		return nil, nil, errDecorate(err, "ReadOrbitals")
	}
	var E [][]float64
	for i := 0; i < C.NBlocks(); i++ {
		line, err := R.line("ReadOrbitals")
		if err != nil {
			return nil, nil, err
		}
		if line != fmt.Sprintf("*block %d", i) {
			return nil, nil, Error{WrongFormat + ": " + line, R.filename, []string{"ReadOrbitals"}, true}
		}
		line, err = R.line("ReadOrbitals")
		if err != nil {
			return nil, nil, err
		}
		if !strings.HasPrefix(line, "*eig ") {
			return nil, nil, Error{WrongFormat + ": " + line, R.filename, []string{"ReadOrbitals"}, true}
		}
		if rest := line[len("*eig "):]; rest != "none" {
			ev, err := parseFloats(rest)
			if err != nil {
				return nil, nil, Error{WrongFormat + ": " + line, R.filename, []string{"ReadOrbitals"}, true}
			}
			if E == nil {
				E = make([][]float64, C.NBlocks())
			}
			E[i] = ev
		}
		b := C.Block(i)
		for j := 0; j < nbands; j++ {
			line, err := R.line("ReadOrbitals")
			if err != nil {
				return nil, nil, err
			}
			row, err := parseFloats(line)
			if err != nil || len(row) != sizes[i%nk] {
				return nil, nil, Error{WrongFormat + fmt.Sprintf(": block %d band %d", i, j), R.filename, []string{"ReadOrbitals"}, true}
			}
			copy(b.RawRowView(j), row)
		}
	}
	return C, E, nil
}

//Close closes the checkpoint. The Reader's header stays available.
func (R *Reader) Close() {
	if R == nil {
		return
	}
	if R.readable {
		R.z.Close()
		R.f.Close()
	}
	R.readable = false
}

func (R *Reader) line(caller string) (string, error) {
	if !R.h.Scan() {
		if err := R.h.Err(); err != nil {
			return "", Error{ReadError + ": " + err.Error(), R.filename, []string{caller}, true}
		}
		return "", Error{EOF, R.filename, []string{caller}, false}
	}
	return R.h.Text(), nil
}

func parseFloats(line string) ([]float64, error) {
	fields := strings.Fields(line)
	r := make([]float64, len(fields))
	var err error
	for i, f := range fields {
		if r[i], err = strconv.ParseFloat(f, 64); err != nil {
			return nil, err
		}
	}
	return r, nil
}

//Errors

//errDecorate asserts that err implements dft.Error and decorates it with the
//caller's name before returning it.
func errDecorate(err error, caller string) error {
	err2 := err.(dft.Error)
	err2.Decorate(caller)
	return err2
}

// Error is the error type for checkpoint files. It fulfills dft.Error and
// dft.CriticalError.
type Error struct {
	message  string
	filename string //the checkpoint with problems, or empty string if none.
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return fmt.Sprintf("wfn file %s error: %s", err.filename, err.message)
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
	UnIniRead    = "Reader not initialized or already closed"
	UnIniWrite   = "Writer not initialized or already closed"
	UnableToOpen = "Unable to open file"
	ReadError    = "Error reading checkpoint"
	WrongFormat  = "Wrong format in checkpoint"
	NilOrbitals  = "Given nil orbitals"
	EOF          = "EOF"
)
