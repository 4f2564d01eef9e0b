// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"

	"github.com/longbiscuit/ABAQUS-preprocessor/cell"
	"github.com/longbiscuit/ABAQUS-preprocessor/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			for i := 8; i > 3; i-- {
				chk.CallerInfo(i)
			}
			io.PfRed("ERROR: %v\n", err)
			os.Exit(1)
		}
	}()

	// command
	var verbose bool
	var alias, dirout string
	root := &cobra.Command{
		Use:           "latmesh <file.lat>",
		Short:         "Generates truss lattice meshes (Kagome, Honeycomb, Voxel) for Abaqus",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], alias, dirout, verbose)
		},
	}
	root.Flags().BoolVarP(&verbose, "verbose", "v", true, "show messages")
	root.Flags().StringVarP(&alias, "alias", "a", "", "word to add to output filename")
	root.Flags().StringVarP(&dirout, "dirout", "d", "", "directory for output; overrides job file")

	// run
	if err := root.Execute(); err != nil {
		chk.Panic("%v", err)
	}
}

func run(fnpath, alias, dirout string, verbose bool) (err error) {

	// message
	io.Verbose = verbose
	io.PfWhite("%s", banner())

	// job
	job, err := inp.ReadJob(fnpath, alias)
	if err != nil {
		return
	}
	if dirout != "" {
		job.DirOut = dirout
	}
	io.Pf("%-22s = %s\n", "job file", fnpath)
	io.Pf("%-22s = %s\n", "description", job.Desc)
	io.Pf("%-22s = %s\n", "output directory", job.DirOut)

	// mesh
	m, stats, err := job.Build(verbose)
	if err != nil {
		return chk.Err("cannot build lattice:\n%v", err)
	}
	io.Pforan("%d cells; %d shared corners; %d nodes; %d elements\n", stats.Ncells, stats.Nshared, m.Nverts(), m.Nelems())

	// write deck
	var buf bytes.Buffer
	if err = job.Encode(&buf, m); err != nil {
		return chk.Err("cannot encode Abaqus deck:\n%v", err)
	}
	io.WriteFileVD(job.DirOut, job.Key+".inp", &buf)
	return
}

// banner returns the message shown when latmesh starts
func banner() string {
	return io.Sf("\nlatmesh -- truss lattice meshes (%v) for Abaqus\n\n", cell.Kinds())
}
