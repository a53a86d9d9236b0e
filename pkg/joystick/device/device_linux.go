//go:build linux

package device

import (
	"bytes"
	"fmt"
	"os"
	"syscall"
	"unsafe"
)

// ioctl requests from linux/joystick.h.
const (
	jsGetAxes    uint = 0x80016a11
	jsGetButtons uint = 0x80016a12
	jsGetName    uint = 0x80ff6a13

	nameLen = 255
)

// maxDevices bounds the detection scan.
const maxDevices = 32

type joystick struct {
	file    *os.File
	index   int
	name    string
	axes    uint8
	buttons uint8
}

// Path returns the device node of a joystick index.
func Path(index int) string {
	return fmt.Sprintf("/dev/input/js%d", index)
}

// Open opens the joystick of an index.
func Open(index int) (Device, error) {
	f, err := os.Open(Path(index))
	if err != nil {
		return nil, err
	}
	js := &joystick{file: f, index: index}
	if err = js.query(); err != nil {
		f.Close()
		return nil, fmt.Errorf("%s: %w", Path(index), err)
	}
	return js, nil
}

// DetectAndOpen opens the first joystick found from startIndex.
func DetectAndOpen(startIndex int) (Device, error) {
	for index := startIndex; index < maxDevices; index++ {
		js, err := Open(index)
		switch {
		case err == nil:
			return js, nil
		case !os.IsNotExist(err):
			return nil, err
		}
	}
	return nil, nil
}

func (js *joystick) query() error {
	if errno := js.ioctl(jsGetAxes, unsafe.Pointer(&js.axes)); errno != 0 {
		return errno
	}
	if errno := js.ioctl(jsGetButtons, unsafe.Pointer(&js.buttons)); errno != 0 {
		return errno
	}
	var name [nameLen + 1]byte
	if errno := js.ioctl(jsGetName, unsafe.Pointer(&name)); errno != 0 {
		return errno
	}
	if end := bytes.IndexByte(name[:], 0); end >= 0 {
		js.name = string(name[:end])
	} else {
		js.name = string(name[:nameLen])
	}
	return nil
}

func (js *joystick) ioctl(req uint, arg unsafe.Pointer) syscall.Errno {
	_, _, errno := syscall.Syscall(syscall.SYS_IOCTL, js.file.Fd(), uintptr(req), uintptr(arg))
	return errno
}

func (js *joystick) Close() error              { return js.file.Close() }
func (js *joystick) Index() int                { return js.index }
func (js *joystick) Name() string              { return js.name }
func (js *joystick) AxisCount() int            { return int(js.axes) }
func (js *joystick) ButtonCount() int          { return int(js.buttons) }
func (js *joystick) ReadEvent() (Event, error) { return DecodeEvent(js.file) }
