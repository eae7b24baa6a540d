// 3 Aug 2020
/*

pdbinfo reads protein coordinate files in PDB format and prints a summary of each model.

Usage:
 pdbinfo [options] file.pdb [file2.pdb.gz ...]

Flags:
  -a	Summarise every model in a file. Without this, only the first
  	model is read. NMR structures can have dozens.
  -c filename
    	Read options from a yaml file. Flags on the command line win
    	over anything in the file.
  -g	After the summary, write the alpha carbon geometry (bond,
  	angle, dihedral in degrees, number of contacts) in csv format.
  	This builds a full distance matrix, so is slow for huge files.
  -l filename
    	Write messages about skipped records to filename. "stdout" is
    	allowed. By default, they are thrown away.
  -o filename
    	Write output to filename. By default, standard output.
  -r chains
    	Remove these chains before looking, like -r AB or -r A,B.

Files may be gzipped. mmCIF files are recognised and refused. A file name of
- reads standard input, which may also be gzipped.

An options file looks like

  all_models: true
  remove_chains: [B, C]
  geometry: false
  log: pdbinfo.log
  contact_cutoff: 8.0

contact_cutoff is the alpha carbon distance used for counting contacts and can only be set in the file.

*/
package main
