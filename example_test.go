// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrencode_test

import (
	"fmt"
	"log"

	"github.com/unixdj/qrencode"
)

func ExampleEncode() {
	c, err := qrencode.Encode("HELLO WORLD", qrencode.DefaultLevel)
	if err != nil {
		log.Fatalln(err)
	}
	fmt.Printf("version %d-%s, %d modules, %s, mask %d\n",
		c.Version, c.Level, c.Size, c.Mode, c.Mask)
	// Output:
	// version 2-H, 25 modules, alphanumeric, mask 5
}

func ExampleCode_Matrix() {
	c, err := qrencode.EncodeVersion("HELLO WORLD", qrencode.Q, 1)
	if err != nil {
		log.Fatalln(err)
	}
	m := c.Matrix()
	fmt.Println(len(m), m[0][0], m[7][7])
	// Output:
	// 21 true false
}

func ExampleEncodeOptions() {
	c, err := qrencode.EncodeOptions("0123456789", qrencode.Options{
		Level:     qrencode.M,
		Mask:      3,
		ForceMask: true,
	})
	if err != nil {
		log.Fatalln(err)
	}
	fmt.Printf("version %d-%s, %s, mask %d\n", c.Version, c.Level, c.Mode, c.Mask)
	// Output:
	// version 1-M, numeric, mask 3
}
