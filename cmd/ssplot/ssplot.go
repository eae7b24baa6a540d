// 12 Sep 2020
/*

ssplot draws the secondary structure of the first model in a PDB file.
Each chain is a row and each residue a coloured cell: red for helix,
yellow for strand and grey for coil.

Usage:
 ssplot [options] file.pdb

Flags:
  -w n
    	Each residue is n pixels wide (default 4).
  -h n
    	Each chain is n pixels high (default 20).
  -o filename
    	Write the png to filename. By default, 1abc.pdb.gz becomes 1abc.png
    	in the current directory.

*/
package main
