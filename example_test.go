package errlog_test

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/LeSnake04/errlog"
)

func printSink(level errlog.Level, _ int64, message string) {
	fmt.Printf("%s: %s\n", level, message)
}

func Example() {
	log := errlog.NewErrorLog[int]().WithDisplayFunc(printSink)

	v, err := strconv.Atoi("abc")
	errlog.PushResult(log, v, err)
	log.MergeResult(strconv.Atoi("123"))
	log.Infof("parsed %d inputs", 2)

	fmt.Println(log.MustDisplay())
	// Output:
	// ERROR: strconv.Atoi: parsing "abc": invalid syntax
	// INFO: parsed 2 inputs
	// 123
}

func ExampleLog_WithMaxLevel() {
	log := errlog.NewErrorLog[struct{}]().
		WithDisplayFunc(printSink).
		WithMaxLevel(errlog.LevelWarn)

	log.Warnf("cache miss").Debugf("key=%q", "user:1").PushError(errors.New("backend down"))
	log.Display()
	// Output:
	// WARN: cache miss
	// ERROR: backend down
}

func ExampleLog_RenderJoined() {
	log := errlog.NewErrorLog[int]().WithDelimiter("; ")
	log.Warnf("warn").PushError(errors.New("error"))

	joined, _ := log.RenderJoined()
	fmt.Println(joined)
	// Output: warn; error
}

func ExampleLog_WithInstantDisplay() {
	log := errlog.NewErrorLog[int]().
		WithDisplayFunc(printSink).
		WithInstantDisplay(true)

	log.Infof("step 1")
	fmt.Println("working")
	log.Infof("step 2")
	log.Display()
	// Output:
	// INFO: step 1
	// working
	// INFO: step 2
}
